// Package config abstracts the configuration surface the pipeline is
// assembled from. Values are plain strings resolved by key.
package config

type Config interface {
	Get(string) string
	GetOrDefault(string, string) string
}
