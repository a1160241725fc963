/*
Package pad composes the reversible obfuscation pipeline of xorpad.

Encryption is a fixed sequence of stages:

	encode (text only) -> compress -> mask

Decryption runs the exact inverse:

	unmask -> decompress -> decode (text only)

The first failing stage aborts the whole operation and is reported as a *StageError naming that stage.
Nothing is partially returned.

# Artifacts:

Encrypt returns a Sealed pair, the masked data and its key.
They are the same length, carry no header, magic number, or version tag, and are only meaningful together.
Because the pair doesn't record whether it came from text or a file, the caller supplies the Kind when decrypting.

# Integrity:

There is no integrity tag.
Corruption is only noticed when it breaks the compressed stream, which the zstd frame checksum makes very likely, but a damaged pair that happens to decode is returned as-is.
*/
package pad
