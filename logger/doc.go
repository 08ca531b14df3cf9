// Package logger provides zerolog-backed structured logging for commercekit.
//
// Components obtain a named logger through Get; names that have not been
// registered fall back to the global logger tagged with the component name:
//
//	log := logger.Get("cache")
//	log.Debug("entry refreshed", logger.Fields(
//	    logger.FieldOperation, "getCart",
//	    logger.FieldFingerprint, fp.String(),
//	))
package logger
