package obsws

import (
	"crypto/sha256"
	"encoding/base64"
)

// authResponse derives the Identify authentication string from the shared
// password and the server's salt and challenge:
// base64(sha256(base64(sha256(password+salt)) + challenge)).
func authResponse(password, salt, challenge string) string {
	secret := sha256.Sum256([]byte(password + salt))
	encoded := base64.StdEncoding.EncodeToString(secret[:])
	proof := sha256.Sum256([]byte(encoded + challenge))
	return base64.StdEncoding.EncodeToString(proof[:])
}
