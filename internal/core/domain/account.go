package domain

// Account is one addressed storage buffer as the host hands it to the
// program for the duration of a single request. Owner is the program that
// controls the buffer; an address that was never allocated has a zero Owner
// and no Data. IsSigner is set by the host after it has verified a
// signature for Address over the request.
type Account struct {
	Address  Identity
	Owner    Identity
	Data     []byte
	IsSigner bool
}

// Clone returns a deep copy so that callers can stage writes without
// touching the original buffer.
func (a *Account) Clone() *Account {
	c := *a
	if a.Data != nil {
		c.Data = append([]byte(nil), a.Data...)
	}
	return &c
}

// SigningMessage is the byte string each signer of a request signs: the
// instruction payload followed by every account address in order.
func SigningMessage(data []byte, addresses []Identity) []byte {
	msg := make([]byte, 0, len(data)+IdentitySize*len(addresses))
	msg = append(msg, data...)
	for _, a := range addresses {
		msg = append(msg, a[:]...)
	}
	return msg
}
