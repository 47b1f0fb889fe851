package metadata

type applyInput struct {
	Value any
}

// ApplyFromSources applies the first available source value using spec.Apply.
func ApplyFromSources(spec FieldSpec, src Source, tgt Target) {
	if spec.Apply == nil || len(spec.Sources) == 0 {
		return
	}
	for _, get := range spec.Sources {
		if get == nil {
			continue
		}
		value, ok := get(src)
		if !ok {
			continue
		}
		if err := spec.Apply(tgt, applyInput{Value: value}); err != nil {
			logf(src.ModelID, "apply %s failed (%v)", spec.Key, err)
		}
		return
	}
	logf(src.ModelID, "skip %s (no source)", spec.Key)
}

// ApplyDatasetFromSources applies the first available dataset source value.
func ApplyDatasetFromSources(spec DatasetFieldSpec, src DatasetSource, tgt DatasetTarget) {
	if spec.Apply == nil || len(spec.Sources) == 0 {
		return
	}
	for _, get := range spec.Sources {
		if get == nil {
			continue
		}
		value, ok := get(src)
		if !ok {
			continue
		}
		if err := spec.Apply(tgt, applyInput{Value: value}); err != nil {
			dslogf(src.DatasetID, "apply %s failed (%v)", spec.Key, err)
		}
		return
	}
	dslogf(src.DatasetID, "skip %s (no source)", spec.Key)
}
