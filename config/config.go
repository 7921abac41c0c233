package config

import "github.com/spf13/viper"

type Config struct {
	Server      Server      `yaml:"server" mapstructure:"server"`
	Postgres    Postgres    `yaml:"postgres" mapstructure:"postgres"`
	RabbitMQ    RabbitMQ    `yaml:"rabbitmq" mapstructure:"rabbitmq"`
	Minio       Minio       `yaml:"minio" mapstructure:"minio"`
	Email       Email       `yaml:"email" mapstructure:"email"`
	HuggingFace HuggingFace `yaml:"huggingface" mapstructure:"huggingface"`
}

type Server struct {
	Port string `yaml:"port" mapstructure:"port"`
}

type Postgres struct {
	Host            string `yaml:"host" mapstructure:"host"`
	Port            int    `yaml:"port" mapstructure:"port"`
	Username        string `yaml:"username" mapstructure:"username"`
	Password        string `yaml:"password" mapstructure:"password"`
	Database        string `yaml:"database" mapstructure:"database"`
	AutoCreateTable bool   `yaml:"auto_create" mapstructure:"auto_create"`
}

type RabbitMQ struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Queue    string `yaml:"queue" mapstructure:"queue"`
}

type Minio struct {
	Endpoint  string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKey string `yaml:"access_key" mapstructure:"access_key"`
	SecretKey string `yaml:"secret_key" mapstructure:"secret_key"`
	Bucket    string `yaml:"bucket" mapstructure:"bucket"`
}

type Email struct {
	APIKey string `yaml:"api_key" mapstructure:"api_key"`
	From   string `yaml:"from" mapstructure:"from"`
}

type HuggingFace struct {
	APIKey         string `yaml:"api_key" mapstructure:"api_key"`
	URL            string `yaml:"url" mapstructure:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	Models         Models `yaml:"models" mapstructure:"models"`
}

// Models holds the per-stage inference model identifiers, appended to the
// base URL as path segments.
type Models struct {
	ImageCaptioning   string `yaml:"image_captioning" mapstructure:"image_captioning"`
	LanguageDetection string `yaml:"language_detection" mapstructure:"language_detection"`
	Translation       string `yaml:"translation" mapstructure:"translation"`
	TagGeneration     string `yaml:"tag_generation" mapstructure:"tag_generation"`
	Summarization     string `yaml:"summarization" mapstructure:"summarization"`
}

func InitConfig(filename string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
