package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted bcrypt hash of the password. The cost factor and a
// random salt are embedded in the output, so two hashes of the same password
// differ.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the password matches the stored hash. Malformed
// hashes verify as false.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
