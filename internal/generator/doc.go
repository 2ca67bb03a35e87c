// Package generator produces synthetic personal profiles for five locales
// (RU, US, GB, DE, FR): names, addresses, phone numbers, emails with Cyrillic
// transliteration, education, occupation, and login credentials with
// configurable password rules. The data is fictional and drawn from fixed
// pools; nothing is sourced from real people.
package generator
