// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Mikheev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The Google and Cloudinary sections are deliberately not required here:
// when they are absent the corresponding features are disabled at wiring
// time rather than failing the whole process.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if !cfg.OAuth.Google.IsComplete() && !cfg.OAuth.Google.IsEmpty() {
		return ErrInvalidOAuthConfigs
	}

	return nil
}

// IsComplete reports whether every field required to run the Google OAuth
// flow is present.
func (g Google) IsComplete() bool {
	return g.ClientID != "" && g.ClientSecret != "" && g.RedirectURI != ""
}

// IsEmpty reports whether the Google section was left unconfigured entirely.
func (g Google) IsEmpty() bool {
	return g.ClientID == "" && g.ClientSecret == "" && g.RedirectURI == ""
}

// IsComplete reports whether every field required to upload images to
// Cloudinary is present.
func (c Cloudinary) IsComplete() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}
