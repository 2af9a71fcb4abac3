// Package confloader provides configuration loading for keva.
//
// It loads configuration from a YAML file and environment variables
// using koanf, with env overriding file and file overriding defaults.
// A companion fsnotify watcher reloads the file at runtime.
package confloader
