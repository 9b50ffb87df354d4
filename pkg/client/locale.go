package client

import (
	"context"
	"sync"
)

// LocaleState is the lifecycle of the locale container.
type LocaleState int

const (
	LocaleUninitialized LocaleState = iota
	LocaleLoading
	LocaleReady
)

// DefaultLanguage is used when no preference has been persisted.
const DefaultLanguage = "en"

// Locale is the process-wide source of truth for the active display
// language: the current code, its translation table, and the
// supported-language catalog. Only the preferred code is persisted;
// tables are refetched on every explicit change.
type Locale struct {
	client *Client
	store  *Store

	mu           sync.RWMutex
	state        LocaleState
	current      string
	translations map[string]string
	supported    []Language
}

// NewLocale builds the container and installs its Translate lookup as
// the client's message translator, so client-synthesized failure
// messages localize through the same table as everything else.
func NewLocale(c *Client, store *Store) *Locale {
	l := &Locale{
		client:       c,
		store:        store,
		state:        LocaleUninitialized,
		current:      DefaultLanguage,
		translations: map[string]string{},
	}
	c.SetTranslator(l.Translate)
	return l
}

// Bootstrap moves uninitialized→loading→ready: it reads the persisted
// preference (default "en") and fetches the supported-language catalog
// and the translation table concurrently, joining both before
// declaring ready. Either fetch failing degrades to empty defaults —
// startup is never blocked on localization. The failures themselves
// surface through the broadcaster like any other wrapper failure.
func (l *Locale) Bootstrap(ctx context.Context) {
	l.mu.Lock()
	l.state = LocaleLoading
	l.mu.Unlock()

	code := l.store.PreferredLanguage()
	if code == "" {
		code = DefaultLanguage
	}

	var (
		wg        sync.WaitGroup
		languages []Language
		table     map[string]string
		tableLang string
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		if res, err := l.client.SupportedLanguages(ctx); err == nil {
			languages = res.Languages
		}
	}()
	go func() {
		defer wg.Done()
		if res, err := l.client.ChangeLanguage(ctx, code); err == nil {
			table = res.Translations
			tableLang = res.CurrentLanguage
		}
	}()
	wg.Wait()

	l.mu.Lock()
	defer l.mu.Unlock()
	l.supported = languages
	if table != nil {
		l.translations = table
		l.current = tableLang
	} else {
		l.translations = map[string]string{}
		l.current = code
	}
	l.state = LocaleReady
}

// ChangeLanguage re-enters loading and fetches the table for code. On
// success the current code, table, and persisted preference all
// update; on failure the prior state is retained and the failure has
// already been broadcast by the wrapper.
func (l *Locale) ChangeLanguage(ctx context.Context, code string) error {
	l.mu.Lock()
	prev := l.state
	l.state = LocaleLoading
	l.mu.Unlock()

	res, err := l.client.ChangeLanguage(ctx, code)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = prev
		return err
	}

	l.current = res.CurrentLanguage
	l.translations = res.Translations
	l.state = LocaleReady

	if err := l.store.SetPreferredLanguage(res.CurrentLanguage); err != nil {
		return err
	}
	return nil
}

// Translate looks key up in the current table. A missing key comes
// back verbatim — never empty — so untranslated text stays visible
// instead of silently disappearing.
func (l *Locale) Translate(key string) string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if v, ok := l.translations[key]; ok {
		return v
	}
	return key
}

// Current returns the active language code.
func (l *Locale) Current() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Supported returns the supported-language catalog (may be empty when
// bootstrap degraded).
func (l *Locale) Supported() []Language {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Language, len(l.supported))
	copy(out, l.supported)
	return out
}

// State returns the container's lifecycle state.
func (l *Locale) State() LocaleState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state
}
