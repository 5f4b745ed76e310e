// Package config loads the htgo command line configuration.
//
// The configuration is stored in htgo.yaml. Every field has a default, so
// the file is optional; command line flags override what it sets.
//
// # Configuration File Structure
//
//	serve:
//	  addr: ":8080"
//	  write_timeout: 30s
//	  metrics: true
//	  metrics_path: /metrics
//	  websocket: true
//	render:
//	  page: index
//	  output: index.html
//	bench:
//	  rows: 1000
//	  iterations: 10
//	publish:
//	  bucket: my-site
//	  prefix: www/
//	  region: eu-west-1
//	  minify: true
//	log:
//	  level: info
//	  format: text
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println("Listening on", cfg.Serve.Addr)
package config
