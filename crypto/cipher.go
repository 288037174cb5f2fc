package crypto

// TextCipher is the capability shared by the table ciphers. Variants are
// independent types; pipelines compose them instead of extending them.
type TextCipher interface {
	Encrypt(text string) string
	Decrypt(text string) string
}

// CharCipher substitutes one symbol at a time without positional state.
type CharCipher interface {
	EncryptChar(c rune) rune
	DecryptChar(c rune) rune
}

var (
	_ TextCipher = (*MonoCipher)(nil)
	_ CharCipher = (*MonoCipher)(nil)
	_ TextCipher = (*PolyCipher)(nil)
)
