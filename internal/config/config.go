package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type key string

const (
	KeyLogger  = key("logger")
	KeyMetrics = key("metrics")
	KeyAdmin   = key("admin")
)

type Config struct {
	Service     Service
	Platform    Platform
	Logger      Logger
	Metrics     Metrics
	Postgres    Postgres
	Connector   Connector
	Reward      Reward
	Security    Security
	Admin       Admin
	JoystickTV  JoystickTV
	Warudo      Warudo
	OBS         OBS
	StreamerBot StreamerBot
	Buttplug    Buttplug
	PiShock     PiShock
	VRChat      VRChat
}

type Service struct {
	Port string `env:"SERVICE_PORT" env-default:"8080"`
	Name string `env:"SERVICE_NAME" env-default:"stream-hub"`
}

type Platform struct {
	Env string `env:"PLATFORM_ENV" env-default:"local"`
}

type Logger struct {
	Host string `env:"LOGGER_HOST"`
	Port string `env:"LOGGER_PORT"`
}

type Metrics struct {
	Host string `env:"METRICS_HOST"`
	Port int    `env:"METRICS_PORT"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER" env-required:"true"`
	Password string `env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `env:"POSTGRES_DB" env-required:"true"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
}

type Connector struct {
	MaxInitAttempts   int           `env:"MAX_INIT_ATTEMPTS" env-default:"6"`
	MaxReconnectDelay time.Duration `env:"MAX_RECONNECT_DELAY" env-default:"60s"`
}

type Reward struct {
	Interval        time.Duration `env:"REWARD_INTERVAL" env-default:"300s"`
	PointsPerMinute float64       `env:"REWARD_POINTS_PER_MINUTE" env-default:"2.0"`
	RecoveryWindow  time.Duration `env:"RECOVERY_WINDOW" env-default:"300s"`
	SweepInterval   time.Duration `env:"REWARD_SWEEP_INTERVAL" env-default:"5m"`
	ChattedOnce     float64       `env:"REWARD_CHATTED_ONCE" env-default:"100"`
	ChattedFixed    float64       `env:"REWARD_CHATTED_FIXED" env-default:"0"`
	FollowedOnce    float64       `env:"REWARD_FOLLOWED_ONCE" env-default:"100"`
	FollowedFixed   float64       `env:"REWARD_FOLLOWED_FIXED" env-default:"0"`
	SubscribedOnce  float64       `env:"REWARD_SUBSCRIBED_ONCE" env-default:"0"`
	SubscribedFixed float64       `env:"REWARD_SUBSCRIBED_FIXED" env-default:"0"`
	TippedFixed     float64       `env:"REWARD_TIPPED_FIXED" env-default:"0"`
	TippedPerToken  float64       `env:"REWARD_TIPPED_PER_TOKEN" env-default:"1"`
	RaidedFixed     float64       `env:"REWARD_RAIDED_FIXED" env-default:"0"`
	RaidedPerViewer float64       `env:"REWARD_RAIDED_PER_VIEWER" env-default:"10"`
}

type Security struct {
	FernetKey string `env:"FERNET_KEY" env-required:"true"`
}

type Admin struct {
	JWTSecret string `env:"ADMIN_JWT_SECRET" env-required:"true"`
}

type JoystickTV struct {
	Host         string        `env:"JOYSTICKTV_HOST" env-required:"true"`
	APIHost      string        `env:"JOYSTICKTV_API_HOST" env-required:"true"`
	ClientID     string        `env:"JOYSTICKTV_CLIENT_ID" env-required:"true"`
	ClientSecret string        `env:"JOYSTICKTV_CLIENT_SECRET" env-required:"true"`
	VIPUsers     []string      `env:"JOYSTICKTV_VIP_USERS" env-separator:","`
	Timeout      time.Duration `env:"JOYSTICKTV_TIMEOUT" env-default:"10s"`
}

type Warudo struct {
	Host string `env:"WARUDO_WS_HOST"`
}

type OBS struct {
	Host     string `env:"OBS_WS_HOST"`
	Password string `env:"OBS_WS_PASSWORD"`
}

type StreamerBot struct {
	Host string `env:"STREAMERBOT_WS_HOST"`
}

type Buttplug struct {
	Host string `env:"BUTTPLUG_WS_HOST"`
}

type PiShock struct {
	Username  string        `env:"PISHOCK_USERNAME"`
	APIKey    string        `env:"PISHOCK_APIKEY"`
	BrokerURL string        `env:"PISHOCK_BROKER_URL" env-default:"wss://broker.pishock.com/v2"`
	AuthURL   string        `env:"PISHOCK_AUTH_URL" env-default:"https://auth.pishock.com/Auth"`
	APIURL    string        `env:"PISHOCK_API_URL" env-default:"https://ps.pishock.com/PiShock"`
	Timeout   time.Duration `env:"PISHOCK_TIMEOUT" env-default:"10s"`
}

type VRChat struct {
	ClientHost string `env:"VRCHAT_CLIENT_HOST"`
}

func MustLoad() *Config {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		log.Fatalf("can not read env variables: %s", err)
	}
	return cfg
}

// MustLoadAdmin reads only the Admin section, for tools that run without the service environment.
func MustLoadAdmin() Admin {
	_ = godotenv.Load()

	cfg := Admin{}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("can not read env variables: %s", err)
	}
	return cfg
}
