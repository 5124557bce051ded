// Package config manages user-level settings stored at
// ~/.geodatasets/config.yaml. It provides functions to load, read, and write
// configuration keys such as the cache directory override and the path to an
// extra dataset document.
package config
