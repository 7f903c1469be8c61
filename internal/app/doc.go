// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that loads scenarios,
// replays them against fresh graphs and reports the results, decoupled from
// any specific entrypoint like a CLI.
package app
