package config

import (
	"fmt"

	"github.com/99designs/keyring"
)

// openKeyring открывает системное хранилище секретов для указанного сервиса.
// Переменная пакета, чтобы тесты могли подменить backend на keyring.NewArrayKeyring.
var openKeyring = func(service string) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: service,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
		},
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// readKeyringSecret читает секрет пользователя user из keyring сервиса service.
func readKeyringSecret(service, user string) (string, error) {
	if user == "" {
		return "", fmt.Errorf("keyring lookup requires a user")
	}

	ring, err := openKeyring(service)
	if err != nil {
		return "", err
	}

	item, err := ring.Get(user)
	if err != nil {
		return "", fmt.Errorf("getting credential %q: %w", user, err)
	}

	return string(item.Data), nil
}

// StoreKeyringSecret сохраняет секрет пользователя user в keyring сервиса service.
// Используется командой `jiractl login`.
func StoreKeyringSecret(service, user, secret string) error {
	ring, err := openKeyring(service)
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:   user,
		Data:  []byte(secret),
		Label: service + " (" + user + ")",
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", user, err)
	}
	return nil
}
