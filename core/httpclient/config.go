package httpclient

// Config holds configuration for the target API the exerciser talks to.
type Config struct {
	// BaseURL is the host and path prefix every check path is resolved against.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8080/api/2"`
	// TimeoutSeconds bounds each request, connection setup included.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"badger-probe"`
}
