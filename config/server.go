package config

import (
	"fmt"

	"github.com/ncobase/echoapi/router"

	"github.com/spf13/viper"
)

// Server server config struct
type Server struct {
	Host   string
	Port   int
	Router string // gin | mux
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func setServerDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.router", router.KindGin)
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:   v.GetString("server.host"),
		Port:   v.GetInt("server.port"),
		Router: v.GetString("server.router"),
	}
}
