package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(Template), 0o600)
}

const Template = `id = "hdlcd"
addr = ":9200"
log_level = "info"
output = "json"
max_body_bytes = 65536
cors_origins = ["http://localhost:3000"]
`
