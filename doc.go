// Package hjarta bootstraps an Fx application around a configuration file
// resolved by upward search from the working directory.
//
// Usage:
//
//	app := hjarta.NewApp(
//	    hjarta.WithConfigFile("conf/app.toml"),
//	    hjarta.WithModules(config.Section[ServerConfig]("server")),
//	    hjarta.WithEnvDefaults(),
//	)
//	app.Run()
package hjarta
