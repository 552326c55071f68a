package handlers

import (
	"net/http"
	"time"
)

// Имена cookie зафиксированы контрактом фронта.
const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// CookieOptions — параметры выставляемых auth-cookie.
type CookieOptions struct {
	Domain     string
	Secure     bool
	Path       string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// setAuthCookies выставляет HTTP-only cookie с парой токенов.
// Токены дублируются в теле ответа: cookie — для браузера,
// тело — для мобильных клиентов без cookie-jar.
func setAuthCookies(w http.ResponseWriter, opts CookieOptions, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     accessCookieName,
		Value:    accessToken,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   int(opts.AccessTTL / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    refreshToken,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   int(opts.RefreshTTL / time.Second),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearAuthCookies сбрасывает auth-cookie (MaxAge<0 удаляет cookie на клиенте).
func clearAuthCookies(w http.ResponseWriter, opts CookieOptions) {
	for _, name := range []string{accessCookieName, refreshCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     opts.Path,
			Domain:   opts.Domain,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
