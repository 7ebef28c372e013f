package cache

// Completions memoizes one subtree computation. On a hit under
// (fingerprint, prefix) the stored list is returned without running
// compute; on a miss compute runs and its result is committed before
// being returned. A nil store disables memoization entirely.
//
// The caller is responsible for key discipline: each worker must only
// write prefixes from its own partition, which is what keeps concurrent
// workers from ever racing on a key.
func Completions(store *Store, fingerprint, prefix string, compute func() (CompletionList, error)) (CompletionList, error) {
	if store == nil {
		return compute()
	}

	if cached, ok, err := store.GetCompletions(fingerprint, prefix); err != nil {
		return nil, err
	} else if ok {
		return cached, nil
	}

	completions, err := compute()
	if err != nil {
		return nil, err
	}

	if err := store.PutCompletions(fingerprint, prefix, completions); err != nil {
		return nil, err
	}
	return completions, nil
}
