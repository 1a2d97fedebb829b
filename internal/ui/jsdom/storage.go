//go:build js && wasm

package jsdom

import (
	"errors"
	"syscall/js"
)

// LocalStorage is an alias.KV over window.localStorage, keyed by client id.
type LocalStorage struct {
	store js.Value
}

// NewLocalStorage fails when storage is disabled or blocked by the browser.
func NewLocalStorage() (*LocalStorage, error) {
	var store js.Value
	err := catch(func() {
		store = js.Global().Get("localStorage")
	})
	if err != nil {
		return nil, err
	}
	if store.IsUndefined() || store.IsNull() {
		return nil, errors.New("localStorage unavailable")
	}
	return &LocalStorage{store: store}, nil
}

func (s *LocalStorage) Get(key string) (value string, ok bool, err error) {
	err = catch(func() {
		v := s.store.Call("getItem", key)
		if v.IsNull() {
			return
		}
		value, ok = v.String(), true
	})
	return value, ok, err
}

func (s *LocalStorage) Set(key, value string) error {
	return catch(func() {
		s.store.Call("setItem", key, value)
	})
}

func (s *LocalStorage) Delete(key string) error {
	return catch(func() {
		s.store.Call("removeItem", key)
	})
}
