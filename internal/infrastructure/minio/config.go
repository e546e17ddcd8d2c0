package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
}

type UploaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
}

type GetterConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
