package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App      App
		JWT      JWT
		Login    Login
		RabbitMQ AppRabbitMQ
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		MaxRequests                int
		ShutdownTimeoutInSeconds   int
		RequestBodyLimitInMegabyte int
		AllowedOrigins             []string
	}

	JWT struct {
		Secret string
	}

	// Login holds the settings of the browser-facing login flow.
	Login struct {
		ClientStorageDriver         string
		ClientStorageTTLInHours     int
		ClientSessionExpiredInHours int
		SubmitLockExpiredInSeconds  int
		SecureCookie                bool
	}

	AppRabbitMQ struct {
		LoginEventsQueue string
	}
)
