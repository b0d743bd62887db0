// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package model

import "strconv"

// StoreConfig describes one backend the store federation should wire up.
type StoreConfig struct {
	Name string   `yaml:"name" json:"name"`
	Type string   `yaml:"type" json:"type"` // "file" | "db" | "code"
	URL  string   `yaml:"url" json:"url,omitempty"`
	Path string   `yaml:"path" json:"path,omitempty"`
	Tags []string `yaml:"tags" json:"tags"`
}

// HasTag reports whether this store config exposes the given content
// kind ("widgets", "css_classes", or "pages").
func (sc StoreConfig) HasTag(tag string) bool {
	for _, t := range sc.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ServerConfig is the listen-address portion of Config.
type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

// PDFConfig enables PDF export via a headless browser subprocess.
type PDFConfig struct {
	ChromiumPath string `yaml:"chromium_path" json:"chromium_path"`
	TempDir      string `yaml:"temp_dir" json:"temp_dir"`
}

// CacheConfig selects and configures the process-wide cache backend.
type CacheConfig struct {
	Backend string `yaml:"backend" json:"backend"` // "inmem" | "redis"
	URL     string `yaml:"url" json:"url,omitempty"`
}

// Config is the process-wide configuration, reloadable at runtime.
type Config struct {
	Debug  bool          `yaml:"debug" json:"debug"`
	Server ServerConfig  `yaml:"server" json:"server"`
	Stores []StoreConfig `yaml:"stores" json:"stores"`
	PDF    *PDFConfig    `yaml:"pdf,omitempty" json:"pdf,omitempty"`
	Cache  *CacheConfig  `yaml:"cache,omitempty" json:"cache,omitempty"`
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	if c.Server.Host == "" && c.Server.Port == 0 {
		return ":8080"
	}
	port := c.Server.Port
	if port == 0 {
		port = 8080
	}
	return c.Server.Host + ":" + strconv.Itoa(port)
}
