package broker

type Config struct {
	URI         string
	StreamName  string `yaml:"stream_name"`
	GroupName   string `yaml:"group_name"`
	BlockTimeMS int64  `yaml:"block_time_in_ms"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
}
