package common

import (
	"crypto/sha256"
	"fmt"
	"os"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a snowflake based int64 identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns a snowflake based string identifier.
func UUID() string {
	return snowflakeNode.Generate().String()
}

// Sha256HashWithSalt hashes src with the given salt appended.
func Sha256HashWithSalt(src string, salt string) string {
	h := sha256.New()
	h.Write([]byte(src + salt))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// GetSecretSalt reads the instance salt from the environment, with a fixed
// fallback for development setups.
func GetSecretSalt() string {
	salt := os.Getenv("PF_SECRET_SALT")
	if salt == "" {
		salt = "powerfit-default-salt"
	}
	return salt
}
