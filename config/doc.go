// Package config loads the cookies configuration using Viper, with
// environment overrides, validation and hot reloading.
//
// # Configuration Loading
//
//	cfg, err := config.LoadConfig("./config.yaml")
//
// Without a path, a file named config (yaml, json or toml) is looked up in
// /etc/cookies, $HOME/.cookies and the working directory. No file at all is
// fine; every setting has a default.
//
// # Configuration Format
//
//	app_name: cookies
//	run_mode: release
//
//	logger:
//	  level: 4          # logrus level, 4 is info
//	  format: json      # json or text
//	  output: stderr    # stdout, stderr or file
//	  output_file: ./logs/cookies.log
//
//	cookie:             # defaults for `cookies serialize`
//	  path: /
//	  max_age: 3600
//	  secure: true
//	  http_only: true
//	  same_site: lax
//	  encoder: uri      # uri, base64 or raw
//
//	signer:
//	  algorithm: sha256
//	  secrets:
//	    - current-secret
//	    - previous-secret
//
// # Environment Variables
//
// Keys are overridden by upper-cased environment variables prefixed with
// COOKIES_ and with dots replaced by underscores:
//
//	export COOKIES_SIGNER_ALGORITHM=sha512
//	export COOKIES_SIGNER_SECRETS="current-secret previous-secret"
//
// # Hot Reloading
//
//	err := cfg.Watch(func(next *config.Config) {
//	    _ = s.SetSecrets(next.Signer.Secrets)
//	})
//
// # Provider Sets
//
// ProviderSet exposes the logger, cookie and signer sections to Wire.
package config
