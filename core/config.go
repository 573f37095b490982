package core

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *Config

type (
	ServerConfig struct {
		Host               string
		Port               int
		JWTExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          int
		DisableTLS    bool
	}

	StorageConfig struct {
		Endpoint      string
		AccessKey     string
		SecretKey     string
		Bucket        string
		PublicBaseURL string
	}

	Config struct {
		Debug            bool
		TestMode         bool
		Env              string
		Build            string
		AppName          string
		SecretKey        string
		WorkDir          string
		FrontendBaseURL  string
		DefaultFromEmail mail.Address
		AdminEmail       string
		// bcrypt hash of the single operator password; see `admin hashpassword`
		AdminPasswordHash string
		SendgridApiKey    string
		RollbarToken      string
		PageSize          int
		VerifyTimeout     time.Duration
		Server            ServerConfig
		Database          DatabaseConfig
		Storage           StorageConfig
	}
)

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c DatabaseConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "StudentAdmissionSystem")
	v.SetDefault("secretKey", "w3lc0me-t0-adm1ss10ns!ch4nge-m3-1n-pr0d")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("defaultFromEmail", "noreply@localhost")
	v.SetDefault("adminEmail", "admin@localhost")
	v.SetDefault("adminPasswordHash", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")
	v.SetDefault("pageSize", 10)
	v.SetDefault("verifyTimeout", 10*time.Second)
	v.SetDefault("jwtExpirationDelta", 4*time.Hour)
	v.SetDefault("serverHost", "0.0.0.0")
	v.SetDefault("serverPort", 8000)
	v.SetDefault("dbEngine", "postgres")
	v.SetDefault("dbName", "admission")
	v.SetDefault("dbUser", "")
	v.SetDefault("dbPassword", "")
	v.SetDefault("dbAdminUser", "")
	v.SetDefault("dbAdminPassword", "")
	v.SetDefault("dbHost", "localhost")
	v.SetDefault("dbPort", 5432)
	v.SetDefault("dbDisableTLS", true)
	v.SetDefault("storageEndpoint", "")
	v.SetDefault("storageAccessKey", "")
	v.SetDefault("storageSecretKey", "")
	v.SetDefault("storageBucket", "uploadedDocument")
	v.SetDefault("storagePublicBaseURL", "")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	var testMode bool
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
	}
	v.SetEnvPrefix(env)

	wd := Getwd()

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:             v.GetBool("debug"),
		TestMode:          testMode,
		Env:               env,
		Build:             v.GetString("build"),
		AppName:           v.GetString("appName"),
		SecretKey:         v.GetString("secretKey"),
		WorkDir:           wd,
		FrontendBaseURL:   v.GetString("frontendBaseURL"),
		DefaultFromEmail:  mail.Address{Name: v.GetString("appName"), Address: v.GetString("defaultFromEmail")},
		AdminEmail:        CleanString(v.GetString("adminEmail"), true /* lower */),
		AdminPasswordHash: v.GetString("adminPasswordHash"),
		SendgridApiKey:    v.GetString("sendgridApiKey"),
		RollbarToken:      v.GetString("rollbarToken"),
		PageSize:          v.GetInt("pageSize"),
		VerifyTimeout:     v.GetDuration("verifyTimeout"),
		Server: ServerConfig{
			Host:               v.GetString("serverHost"),
			Port:               v.GetInt("serverPort"),
			JWTExpirationDelta: v.GetDuration("jwtExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:        v.GetString("dbEngine"),
			Name:          v.GetString("dbName"),
			User:          v.GetString("dbUser"),
			Password:      v.GetString("dbPassword"),
			AdminUser:     v.GetString("dbAdminUser"),
			AdminPassword: v.GetString("dbAdminPassword"),
			Host:          v.GetString("dbHost"),
			Port:          v.GetInt("dbPort"),
			DisableTLS:    v.GetBool("dbDisableTLS"),
		},
		Storage: StorageConfig{
			Endpoint:      v.GetString("storageEndpoint"),
			AccessKey:     v.GetString("storageAccessKey"),
			SecretKey:     v.GetString("storageSecretKey"),
			Bucket:        v.GetString("storageBucket"),
			PublicBaseURL: v.GetString("storagePublicBaseURL"),
		},
	}
}

// Getwd finds the project root by walking up from the working directory until
// a go.mod shows up.
// go-test changes the working directory to the test package being run... this
// breaks relative paths; see:
// https://stackoverflow.com/questions/23847003/golang-tests-and-working-directory
func Getwd() string {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	currDir := wd
	for {
		if _, err := os.Stat(filepath.Join(currDir, "go.mod")); err == nil {
			return currDir
		}
		newDir := filepath.Dir(currDir)
		if newDir == string(os.PathSeparator) || newDir == currDir {
			return wd // not in a checkout; relative paths are on the caller
		}
		currDir = newDir
	}
}
