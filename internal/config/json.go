package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		CookieName    string   `json:"cookie_name"`
		CookieSecure  bool     `json:"cookie_secure"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	OAuth struct {
		FrontendURL string `json:"frontend_url"`
		Google      struct {
			ClientID     string `json:"client_id"`
			ClientSecret string `json:"client_secret"`
			RedirectURI  string `json:"redirect_uri"`
		} `json:"google,omitempty"`
	} `json:"oauth,omitempty"`

	Adapter struct {
		Cloudinary struct {
			CloudName      string   `json:"cloud_name"`
			APIKey         string   `json:"api_key"`
			APISecret      string   `json:"api_secret"`
			UploadFolder   string   `json:"upload_folder"`
			RequestTimeout Duration `json:"request_timeout"`
		} `json:"cloudinary,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			CookieName:    jsonCfg.App.CookieName,
			CookieSecure:  jsonCfg.App.CookieSecure,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		OAuth: OAuth{
			FrontendURL: jsonCfg.OAuth.FrontendURL,
			Google: Google{
				ClientID:     jsonCfg.OAuth.Google.ClientID,
				ClientSecret: jsonCfg.OAuth.Google.ClientSecret,
				RedirectURI:  jsonCfg.OAuth.Google.RedirectURI,
			},
		},
		Adapter: Adapter{
			Cloudinary: Cloudinary{
				CloudName:      jsonCfg.Adapter.Cloudinary.CloudName,
				APIKey:         jsonCfg.Adapter.Cloudinary.APIKey,
				APISecret:      jsonCfg.Adapter.Cloudinary.APISecret,
				UploadFolder:   jsonCfg.Adapter.Cloudinary.UploadFolder,
				RequestTimeout: time.Duration(jsonCfg.Adapter.Cloudinary.RequestTimeout),
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
