package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/caffeinepub/task-queue/internal/backend/service"
	"github.com/caffeinepub/task-queue/internal/backend/store"
	"github.com/caffeinepub/task-queue/pkg/cryptox"
	"github.com/caffeinepub/task-queue/pkg/idx"
	"github.com/caffeinepub/task-queue/pkg/jwtx"
)

const signingKeyKey = "signing_key"

type storedKey struct {
	KID string `json:"kid"`
	PEM string `json:"pem"`
}

// OriginKeys are the signer for new origin tokens and the key set used to
// verify them.
type OriginKeys struct {
	Signer   jwtx.Signer
	KeySet   *jwtx.KeySet
	Verifier jwtx.Verifier
}

// InitOriginKeys loads the EdDSA signing key from the system namespace,
// generating and persisting one on first start. Tokens therefore survive
// restarts of persistent drivers.
func InitOriginKeys(ctx context.Context, root *store.Store, issuer string, logger *slog.Logger) (OriginKeys, error) {
	sys := root.Namespace(service.SystemNamespace)

	unlock := sys.Lock(signingKeyKey)
	defer unlock()

	raw, ok, err := sys.Get(ctx, signingKeyKey)
	if err != nil {
		return OriginKeys{}, fmt.Errorf("load signing key: %w", err)
	}

	var key storedKey
	if ok {
		if err := json.Unmarshal([]byte(raw), &key); err != nil {
			return OriginKeys{}, fmt.Errorf("decode signing key: %w", err)
		}
		logger.Info("loaded origin signing key", "kid", key.KID)
	} else {
		pemKey, err := cryptox.GenerateEd25519Key()
		if err != nil {
			return OriginKeys{}, fmt.Errorf("generate signing key: %w", err)
		}
		key = storedKey{KID: idx.New().String(), PEM: string(pemKey)}

		b, err := json.Marshal(key)
		if err != nil {
			return OriginKeys{}, err
		}
		if err := sys.Set(ctx, signingKeyKey, string(b)); err != nil {
			return OriginKeys{}, fmt.Errorf("store signing key: %w", err)
		}
		logger.Info("generated origin signing key", "kid", key.KID)
	}

	signer, err := jwtx.NewSignerEdDSA(key.KID, []byte(key.PEM))
	if err != nil {
		return OriginKeys{}, fmt.Errorf("load signer: %w", err)
	}

	keys := jwtx.NewKeySet()
	if err := keys.AddSigner(signer); err != nil {
		return OriginKeys{}, err
	}

	return OriginKeys{
		Signer:   signer,
		KeySet:   keys,
		Verifier: jwtx.NewCommonEdDSA(keys, issuer, nil),
	}, nil
}
