// Package commands defines the crous CLI.
//
// Commands
//
//   - regions      List regions, or show one with --id
//   - restaurants  List the restaurants of --region, or show one with --id
//   - menus        List the menus of --restaurant, or pick one with --date or --today
//   - version      Print build information
//
// # Implementation
//
// The root command loads the YAML configuration, builds the logger and, when
// telemetry.endpoint is set, the OpenTelemetry providers, then constructs one
// crous.Client shared by the subcommands. Results are printed as indented
// JSON on stdout.
package commands
