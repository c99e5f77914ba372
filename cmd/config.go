package cmd

type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	ExportDir    string
}
