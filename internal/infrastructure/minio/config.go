package minio

type Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
	// PublicURL is the externally reachable base (e.g. a CDN or the storage
	// provider's public host). Empty means derive from Endpoint.
	PublicURL string `yaml:"public_url"`
	Timeout   int64  `yaml:"timeout_in_ms"`
}
