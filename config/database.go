package config

import "fmt"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Database 数据库配置信息
type Database struct {
	Driver   string `json:"driver" yaml:"driver"` // mysql | postgres | sqlite
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	Database string `json:"database" yaml:"database"` // sqlite 下为文件路径
	Charset  string `json:"charset" yaml:"charset"`
	SSLMode  string `json:"ssl_mode" yaml:"ssl_mode"`
	Dsn      string `json:"dsn" yaml:"dsn"` // 非空时直接使用
	Debug    bool   `json:"debug" yaml:"debug"`
}

func (d *Database) DSN() string {
	if d.Dsn != "" {
		return d.Dsn
	}

	switch d.Driver {
	case DriverPostgres:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
	case DriverSQLite:
		return d.Database
	default:
		charset := d.Charset
		if charset == "" {
			charset = "utf8mb4"
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			d.Username, d.Password, d.Host, d.Port, d.Database, charset)
	}
}
