package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	vault "github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Secret is a reference to sensitive configuration material. The raw value
// is never the secret itself: it carries a scheme prefix saying where to
// load it from.
//
//	env:API_KEY                      environment variable
//	file:~/.chaindata/api-key        file contents, trimmed
//	vault:https://v.example.com/secret/data/chaindata/api_key
//	gsm:projects/p/secrets/api-key   Google Secret Manager, latest version
//
// A value with no recognized prefix is treated as a raw inline secret, for
// tests and local development.
type Secret string

// HasTypePrefix reports whether the value names a secret source rather
// than an inline secret.
func (s Secret) HasTypePrefix() bool {
	for _, prefix := range []string{"env:", "file:", "vault:", "gsm:"} {
		if strings.HasPrefix(string(s), prefix) {
			return true
		}
	}
	return false
}

// Load resolves the reference and returns the secret material.
func (s Secret) Load(ctx context.Context) (string, error) {
	value := string(s)
	switch {
	case strings.HasPrefix(value, "env:"):
		name := strings.TrimPrefix(value, "env:")
		secret, ok := os.LookupEnv(name)
		if !ok {
			return "", errors.Errorf("environment variable %s is not set", name)
		}
		return strings.TrimSpace(secret), nil

	case strings.HasPrefix(value, "file:"):
		path := strings.TrimPrefix(value, "file:")
		if strings.HasPrefix(path, "~/") {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			path = home + path[1:]
		}
		bz, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(bz)), nil

	case strings.HasPrefix(value, "vault:"):
		return loadVaultSecret(strings.TrimPrefix(value, "vault:"))

	case strings.HasPrefix(value, "gsm:"):
		return loadGsmSecret(ctx, strings.TrimPrefix(value, "gsm:"))
	}
	return value, nil
}

// loadVaultSecret reads a kv-v2 secret. The reference is the vault address
// followed by the secret path, with the last path segment naming the key
// inside the secret's data.
func loadVaultSecret(ref string) (string, error) {
	idx := strings.Index(ref, "/")
	if strings.HasPrefix(ref, "http") {
		// scheme://host/path
		idx = strings.Index(ref[strings.Index(ref, "//")+2:], "/")
		if idx >= 0 {
			idx += strings.Index(ref, "//") + 2
		}
	}
	if idx < 0 {
		return "", errors.Errorf("vault reference %q has no secret path", ref)
	}
	address, path := ref[:idx], strings.TrimPrefix(ref[idx:], "/")

	lastSlash := strings.LastIndex(path, "/")
	if lastSlash < 0 {
		return "", errors.Errorf("vault path %q has no key segment", path)
	}
	path, key := path[:lastSlash], path[lastSlash+1:]

	client, err := vault.NewClient(&vault.Config{Address: address})
	if err != nil {
		return "", errors.Wrap(err, "could not create vault client")
	}
	secret, err := client.Logical().Read(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not read vault secret %s", path)
	}
	if secret == nil {
		return "", errors.Errorf("no vault secret at %s", path)
	}
	data := secret.Data
	if inner, ok := data["data"].(map[string]interface{}); ok {
		data = inner
	}
	raw, ok := data[key]
	if !ok {
		return "", errors.Errorf("vault secret %s has no key %s", path, key)
	}
	return fmt.Sprintf("%v", raw), nil
}

// loadGsmSecret reads a Google Secret Manager secret. The reference is the
// resource name, with /versions/latest appended when no version is given.
func loadGsmSecret(ctx context.Context, name string) (string, error) {
	if !strings.Contains(name, "/versions/") {
		name = name + "/versions/latest"
	}
	client, err := secretmanager.NewClient(ctx, option.WithUserAgent("chaindata-go"))
	if err != nil {
		return "", errors.Wrap(err, "could not create secretmanager client")
	}
	defer client.Close()
	res, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return "", errors.Wrapf(err, "could not access secret %s", name)
	}
	return strings.TrimSpace(string(res.Payload.Data)), nil
}
