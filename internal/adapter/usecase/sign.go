package usecase

import (
	"crypto/ed25519"

	"dropy/internal/core/domain"
	"dropy/internal/core/port"
)

// SignedRequest builds a SubmitReq for ix over accounts and attaches a
// signature for every account whose address is the public key of one of
// keys.
func SignedRequest(ix domain.Instruction, accounts []domain.Identity, keys ...ed25519.PrivateKey) (port.SubmitReq, error) {
	data, err := ix.MarshalBinary()
	if err != nil {
		return port.SubmitReq{}, err
	}
	msg := domain.SigningMessage(data, accounts)
	req := port.SubmitReq{Data: data, Accounts: make([]port.AccountKey, len(accounts))}
	for i, addr := range accounts {
		req.Accounts[i].Address = addr
		for _, k := range keys {
			if domain.Identity(k.Public().(ed25519.PublicKey)) == addr {
				req.Accounts[i].Signature = ed25519.Sign(k, msg)
				break
			}
		}
	}
	return req, nil
}
