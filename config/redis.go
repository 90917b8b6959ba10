package config

import (
	"net"
	"strconv"
)

// Redis 登出 token 黑名单存储
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database int    `json:"database" yaml:"database"`
}

// Addr host:port，兼容 IPv6
func (r *Redis) Addr() string {
	return net.JoinHostPort(r.Address, strconv.Itoa(r.Port))
}
