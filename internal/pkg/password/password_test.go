package password

import "testing"

func TestHashVerify_RoundTrip(t *testing.T) {
	digest, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if digest == "s3cret" {
		t.Fatalf("digest must not equal the secret")
	}
	if !Verify("s3cret", digest) {
		t.Fatalf("Verify failed for the original secret")
	}
	if Verify("other", digest) {
		t.Fatalf("Verify succeeded for a different secret")
	}
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	first, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	second, err := Hash("same-secret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same secret must differ")
	}
	if !Verify("same-secret", first) || !Verify("same-secret", second) {
		t.Fatalf("Verify must succeed against both digests")
	}
}

func TestVerify_GarbageDigest(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-digest") {
		t.Fatalf("Verify must fail on a malformed digest")
	}
}
