// Package parallel implements concurrency helpers for the dataset pipeline.
package parallel

import "sync"

// ForEachErr executes body for each integer in [0, length) using at most
// limit concurrent goroutines. A limit of one (or less) is a plain sequential
// loop that returns on the first error. With a larger limit, the first error
// recorded by any body stops the scheduling of further iterations; already
// running iterations finish, and the first error is returned.
func ForEachErr(length, limit int, body func(i int) error) error {
	if length <= 0 {
		return nil // No iterations to perform
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			if err := body(i); err != nil {
				return err
			}
		}
		return nil
	}

	sem := make(chan struct{}, limit) // Semaphore with buffer size 'limit'
	var wg sync.WaitGroup
	var mut sync.Mutex
	var first error

	for i := 0; i < length; i++ {
		sem <- struct{}{} // Acquire semaphore
		// check under the semaphore, so a failure recorded while we were
		// blocked is seen before another body is scheduled
		mut.Lock()
		failed := first != nil
		mut.Unlock()
		if failed {
			<-sem
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore after function exits

			if err := body(i); err != nil {
				mut.Lock()
				if first == nil {
					first = err
				}
				mut.Unlock()
			}
		}(i)
	}

	wg.Wait() // Wait for all goroutines to finish
	return first
}
