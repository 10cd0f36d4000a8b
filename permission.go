package gdrive

import "google.golang.org/api/drive/v3"

type Role string

const (
	RoleWriter    Role = "writer"
	RoleCommenter Role = "commenter"
	RoleReader    Role = "reader"
)

const granteeTypeAnyone = "anyone"

// PermissionIDAnyoneWithLink is the well-known id of the "anyone with the link" grant.
const PermissionIDAnyoneWithLink = "anyoneWithLink"

// publicGrant is the permission that makes a file readable by anyone with its link.
func publicGrant() *drive.Permission {
	return &drive.Permission{
		Type: granteeTypeAnyone,
		Role: string(RoleReader),
	}
}
