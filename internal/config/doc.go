// Package config loads vfiber configuration files.
//
// Configuration lives in vfiber.yaml (or vfiber.yml, or vfiber.json) in the
// working directory. Every field is optional; missing fields take the
// defaults returned by New. Durations are Go duration strings.
//
// # Configuration File Structure
//
//	scheduler:
//	  mode: loop          # loop or manual
//	  frame_budget: 8ms   # per idle callback, loop mode
//	  units: 4            # units per slice, manual mode
//	server:
//	  addr: ":8080"
//	  read_timeout: 60s
//	  write_timeout: 10s
//	  root: counter       # counter or todo
//	log:
//	  level: info         # debug, info, warn, error
//	  format: text        # text or json
//	metrics:
//	  enabled: true
//	  namespace: vfiber
//	  path: /metrics
//	snapshot:
//	  target: s3://renders/ci   # or a directory; empty disables
//	  region: us-east-1
//	  endpoint: http://localhost:9000
//
// The JSON form uses the same structure with camelCase keys
// ("frameBudget", "readTimeout").
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	logger := cfg.Log.Logger(os.Stderr)
package config
