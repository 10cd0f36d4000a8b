package gdrive

// This file is part of the package tests (package gdrive) and exposes
// package internals to the external gdrive_test package.

const (
	DriveFileFields  = driveFileFields
	StreamFileFields = streamFileFields
	RenamedFields    = renamedFileFields
)

func EscapeQuery(s string) string {
	return escapeQuery(s)
}

func FindByNameQuery(name string, parentID FileID) string {
	return findByNameQuery(name, parentID)
}

func ListChildrenQuery(parentID FileID) string {
	return listChildrenQuery(parentID)
}

func MakeETag(fileID FileID, mime string, size int64) string {
	return makeETag(fileID, mime, size)
}

func DownloadFileName(name, mime string) string {
	return downloadFileName(name, mime)
}
