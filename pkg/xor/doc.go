/*
Package xor provides pad masking of in-memory payloads.

Note that this is NOT encryption in any meaningful sense for this tool.
The key produced by Mask is stored right next to the masked data and nothing authenticates either of them.
This falls squarely under the obfuscation category, and it is NOT recommended for security critical use.

# How it works:

Mask draws one byte from a ByteSource for every byte of the payload, producing a key that is exactly as long as the payload.
Each payload byte is XORed with the key byte at the same position.
Unlike a repeating key, no key byte is ever used twice, so patterns in the payload don't carry over into the masked output.

Unmask reverses the process given the masked data and the same key.
The two must be the same length, which is checked before any byte is touched.

# Important note:

The key must never be reused for a second payload, and it must be kept next to (but separate from) the masked data.
Losing the key means losing the payload, and tampering with either one is not detected here.

# General guidelines:
  - Use NewSource for real work. It seeds a ChaCha20 keystream from the OS entropy pool once.
  - Use NewSeededSource or SourceFunc only in tests, where a predictable key is useful.
  - A progress observer may be given with WithProgress, it's called at a coarse interval and never affects the output.
*/
package xor
