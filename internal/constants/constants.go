package constants

// API endpoint defaults.
const (
	// DefaultScheme is the URL scheme used when the configured host does
	// not carry one.
	DefaultScheme = "https"

	// DefaultHost is the public Formstack API host.
	DefaultHost = "www.formstack.com"

	// DefaultPort is the default API port.
	DefaultPort = 443

	// DefaultBasePath is the versioned API prefix that endpoint suffixes
	// are appended to.
	DefaultBasePath = "/api/v2/"
)

// HTTP headers.
const (
	// HeaderAuthorization carries the bearer token.
	HeaderAuthorization = "Authorization"

	// HeaderContentType declares the request body encoding.
	HeaderContentType = "Content-Type"

	// HeaderAccept declares the accepted response encoding.
	HeaderAccept = "Accept"

	// HeaderUserAgent identifies the client.
	HeaderUserAgent = "User-Agent"
)

// Content types.
const (
	// ContentTypeForm is the encoding of request parameter bodies.
	ContentTypeForm = "application/x-www-form-urlencoded"

	// ContentTypeJSON is the encoding of API responses.
	ContentTypeJSON = "application/json"
)

// Pagination bounds.
const (
	// MinPerPage is the smallest page size the API accepts.
	MinPerPage = 1

	// MaxPerPage is the largest page size the API accepts.
	MaxPerPage = 100
)

// Client identification.
const (
	// ClientName is the name reported in the default User-Agent header.
	ClientName = "formstack-go"

	// ClientVersion is the version reported in the default User-Agent header.
	ClientVersion = "1.0.0"
)
