package appcontext

const (
	// EnvServer serves the HTTP API.
	EnvServer Env = iota
	// EnvCLI runs one-off scripts; no HTTP server or controllers are started.
	EnvCLI
)

type Env int

func (e Env) String() string {
	switch e {
	case EnvServer:
		return "server"
	case EnvCLI:
		return "cli"
	default:
		return "unknown"
	}
}

type Ctx struct {
	Env Env
}

func Declare(env Env) Ctx {
	return Ctx{
		Env: env,
	}
}
