package config

import "time"

// Config is the root application configuration.
type Config struct {
	Env      string         `yaml:"env" env:"APP_ENV" env-default:"development"`
	Server   ServerConfig   `yaml:"server"`
	Monday   MondayConfig   `yaml:"monday"`
	Supabase SupabaseConfig `yaml:"supabase"`
	Session  SessionConfig  `yaml:"session"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// IsProduction reports whether the service runs in production mode.
// Controls the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	StaticDir       string        `yaml:"static_dir"       env:"SERVER_STATIC_DIR"       env-default:"./public"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"33554432"`
}

// MondayConfig holds work-management API settings.
type MondayConfig struct {
	APIURL          string        `yaml:"api_url"           env:"MONDAY_API_URL"         env-default:"https://api.monday.com/v2"`
	FileURL         string        `yaml:"file_url"          env:"MONDAY_FILE_URL"        env-default:"https://api.monday.com/v2/file"`
	Token           string        `yaml:"token"             env:"MONDAY_API_TOKEN"       env-required:"true"`
	BoardID         string        `yaml:"board_id"          env:"BOARD_ID"               env-required:"true"`
	ExpensesBoardID string        `yaml:"expenses_board_id" env:"EXPENSES_BOARD_ID"      env-required:"true"`
	RequestTimeout  time.Duration `yaml:"request_timeout"   env:"MONDAY_REQUEST_TIMEOUT" env-default:"30s"`
	UploadTimeout   time.Duration `yaml:"upload_timeout"    env:"MONDAY_UPLOAD_TIMEOUT"  env-default:"2m"`
	Columns         ColumnTitles  `yaml:"columns"`
}

// ColumnTitles maps logical fields to board column titles. Titles are
// configuration, not code: boards name columns freely (the expense amount
// column alone has shipped under two different titles).
type ColumnTitles struct {
	Start         string `yaml:"start"          env:"MONDAY_COL_START"          env-default:"Anfang Datum"`
	End           string `yaml:"end"            env:"MONDAY_COL_END"            env-default:"Ende Datum"`
	Pause         string `yaml:"pause"          env:"MONDAY_COL_PAUSE"          env-default:"Pause in Mins"`
	Project       string `yaml:"project"        env:"MONDAY_COL_PROJECT"        env-default:"Projekt"`
	Employee      string `yaml:"employee"       env:"MONDAY_COL_EMPLOYEE"       env-default:"Mitarbeiter"`
	Description   string `yaml:"description"    env:"MONDAY_COL_DESCRIPTION"    env-default:"Beschreibung"`
	ExpenseAmount string `yaml:"expense_amount" env:"MONDAY_COL_EXPENSE_AMOUNT" env-default:"Summe von Ausgabe [€]"`
	Receipt       string `yaml:"receipt"        env:"MONDAY_COL_RECEIPT"        env-default:"Beleg"`
	Involvement   string `yaml:"involvement"    env:"MONDAY_COL_INVOLVEMENT"    env-default:"Beteiligung"`
}

// SupabaseConfig holds identity-provider settings.
type SupabaseConfig struct {
	URL     string `yaml:"url"      env:"SUPABASE_URL"      env-required:"true"`
	AnonKey string `yaml:"anon_key" env:"SUPABASE_ANON_KEY" env-required:"true"`
	// JWTSecret enables local HS256 verification of access tokens instead
	// of a network round-trip per request. Empty means network mode.
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	Timeout   time.Duration `yaml:"timeout"    env:"SUPABASE_TIMEOUT" env-default:"10s"`
}

// SessionConfig holds session cookie settings.
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME" env-default:"sb-access-token"`
	MaxAge     int    `yaml:"max_age"     env:"SESSION_MAX_AGE"     env-default:"3600"`
	LoginPath  string `yaml:"login_path"  env:"SESSION_LOGIN_PATH"  env-default:"/login.html"`
	ThanksPath string `yaml:"thanks_path" env:"SESSION_THANKS_PATH" env-default:"/thanks.html"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
