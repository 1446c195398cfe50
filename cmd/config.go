package cmd

// Config carries everything the application reads from its environment.
type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	BacklogSchedule string
}
