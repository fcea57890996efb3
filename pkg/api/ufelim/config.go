package ufelim

type Config struct {
	LogLevel    string `json:"logLevel,omitempty"`
	FreshPrefix string `json:"freshPrefix,omitempty"`
}
