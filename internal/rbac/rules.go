package rbac

// Default policy. Regular users can take quizzes and read their own
// profile; everything else is the admin's.
var RolePermissions = map[string][]string{
	"user": {
		"quiz:view",
		"quiz:submit",
		"user:view",
		"token:verify",
	},
	"admin": {
		"*", // everything
	},
}
