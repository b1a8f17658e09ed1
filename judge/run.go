package judge

// Run executes one full judge session: ensure the scratch file, launch the
// subject, supervise it to completion, and classify the result. This is
// the single entry point the cmd package's run verb calls.
func Run(session Session) (RunResult, error) {
	scratchOut := ScratchOutputPath(session.ScratchDir, session.InputFilePath)
	if err := EnsureScratchFile(scratchOut); err != nil {
		return RunResult{}, err
	}

	launch, err := Launch(session, scratchOut)
	if err != nil {
		return RunResult{}, err
	}

	reap, err := Supervise(launch.PID, launch.Start, session.TimeLimit)
	if err != nil {
		return RunResult{}, err
	}

	wallTime := reap.Stop.Sub(launch.Start)
	if wallTime < 0 {
		wallTime = 0
	}

	result, err := Classify(reap.RawStatus, reap.Rusage, wallTime, session.TimeLimit, session.MemoryLimitBytes, session.ReferenceAnswerPath, scratchOut)
	if err != nil {
		return RunResult{}, err
	}

	return result, nil
}
