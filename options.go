package gdrive

// DefaultPageSize is the page size of Find and ListFiles when PageSize is not given.
const DefaultPageSize int64 = 10

// Option configures a single facade call.
// Each operation documents the options it reads; the others are ignored.
type Option func(*options)

type options struct {
	folderID  FileID
	fileName  string
	strict    bool
	public    bool
	pageSize  int64
	pageToken string
}

func newOptions(opts []Option) options {
	o := options{strict: true, pageSize: DefaultPageSize}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// InFolder sets the target or scope folder. The configured root folder is used when it is not given or empty.
func InFolder(folderID FileID) Option {
	return func(o *options) { o.folderID = folderID }
}

// WithFileName overrides the original name of an uploaded payload.
func WithFileName(name string) Option {
	return func(o *options) { o.fileName = name }
}

// Strict enables or disables the by-name pre-check of Put, Mkdir and Rename. It is enabled by default.
func Strict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// Public makes the file created by Put or Mkdir readable by anyone with the link.
func Public(public bool) Option {
	return func(o *options) { o.public = public }
}

// PageSize sets the maximum number of entries requested from the provider. Non-positive values select DefaultPageSize.
func PageSize(n int64) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultPageSize
		}
		o.pageSize = n
	}
}

// PageToken resumes a listing from the continuation token of a previous page.
func PageToken(token string) Option {
	return func(o *options) { o.pageToken = token }
}
