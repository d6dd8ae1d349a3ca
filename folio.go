package folio

import "fmt"

// These constants follow the semantic versioning 2.0.0 spec (semver.org).
const (
	major uint8 = 0
	minor uint8 = 3
	patch uint8 = 0

	meta = "dev"
)

func StringVersion() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)

	if meta != "" {
		v = fmt.Sprintf("%s-%s", v, meta)
	}

	return v
}
