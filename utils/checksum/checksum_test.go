package checksum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	type args struct {
		secret  string
		payload string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			// sha256("abc"): the digest covers payload immediately
			// followed by the secret, no delimiter
			name: "payload and secret concatenated",
			args: args{secret: "bc", payload: "a"},
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name: "empty secret",
			args: args{secret: "", payload: "abc"},
			want: "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			// sha256("")
			name: "empty everything",
			args: args{secret: "", payload: ""},
			want: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSigner(tt.args.secret).Checksum(tt.args.payload)
			if got != tt.want {
				t.Errorf("Checksum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestChecksumDeterministicAndOrderSensitive(t *testing.T) {
	signer := NewSigner("cOcrolOftErpArdickTorANTErAiRoBe")

	payload := "17031234561000000123456789BILL42"
	assert.Equal(t, signer.Checksum(payload), signer.Checksum(payload))

	assert.NotEqual(t, signer.Checksum("ab"), signer.Checksum("ba"))
	assert.NotEqual(t, signer.Checksum(payload), signer.Checksum(payload+"0"))
}
