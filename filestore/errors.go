package filestore

import "errors"

// ErrNotRegular is returned by ReadFile/Opener when path exists but is not
// a regular file (a directory, device node, named pipe, or socket).
var ErrNotRegular = errors.New("filestore: not a regular file")
