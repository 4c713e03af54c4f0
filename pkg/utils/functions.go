package utils

import "fmt"

// Retry executa fn até obter sucesso, limitado ao número de tentativas.
func Retry(fn func() error, retries int) error {
	for i := 0; i < retries; i++ {
		if err := fn(); err == nil {
			return nil
		}
	}
	return fmt.Errorf("falha após %d tentativas", retries)
}
