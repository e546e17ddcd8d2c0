package memcache

type Config struct {
	Address      string `yaml:"address"`
	TTL          int32  `yaml:"ttl_in_seconds"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	Timeout      int64  `yaml:"timeout_in_ms"`
}
