package rules

type Settings struct {
	SeverityThreshold string
	Disabled          map[string]bool
}

var rsettings = Settings{
	Disabled: map[string]bool{},
}

func SetSettings(s Settings) {
	if s.Disabled == nil {
		s.Disabled = map[string]bool{}
	}
	rsettings = s
}

// Threshold returns the configured minimum severity ("" means report all).
func Threshold() string { return rsettings.SeverityThreshold }
